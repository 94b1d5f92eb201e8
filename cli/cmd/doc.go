// Package cmd implements the createnv commands.
//
// [Generate], the default command, reads a commented sample, asks for every
// value it cannot take from defaults, and writes the environment file.
// [Init] saves the current options to the configuration file.
package cmd

// ConfigIdentifier is the kong variable identifier containing the path to
// the configuration file written by [Init].
const ConfigIdentifier = "config"
