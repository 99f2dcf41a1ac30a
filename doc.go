// Package progvar holds the small I/O helpers shared by the progress variable
// tools: opening local or Google Storage inputs, transparent decompression and
// delimiter sniffing for tabular flamelet output.
package progvar
