// Package prompt talks to the human running createnv.
//
// A [Terminal] asks for values and confirmations and prints styled status
// lines. When its input is a terminal it runs small bubbletea programs;
// otherwise it reads answers line by line, so they can be piped in.
package prompt
