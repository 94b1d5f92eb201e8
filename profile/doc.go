// Package profile provides optional runtime profiling for createnv.
//
// Profiling is compiled in only with the "pprof" build tag ([Tag]), using
// [github.com/pkg/profile]. Without the tag, [Modes] is empty and
// [Profiler.Start] returns a no-op.
//
//	p := profile.Profiler{Mode: "cpu", Path: "/tmp/createnv"}
//	defer p.Start().Stop()
//
// Profiles are written under Path with names matching the mode (cpu.pprof,
// mem.pprof, ...). Analyze them with go tool pprof:
//
//	go tool pprof -http=: /tmp/createnv/cpu.pprof
//
// Building with the tag also registers the [net/http/pprof] handlers.
package profile

// Tag is the build tag required to enable pprof profiling.
const Tag = `pprof`
