// Package commands defines the receiptomatic CLI and wires dependencies for subcommands.
//
// Commands
//
//   - (root)             Run the interactive service counter session
//   - print threedp      Print one 3D print receipt from flags
//   - print sublimation  Print one sublimation receipt from flags
//   - rates              Show the configured rates and printer
//
// # Implementation
//
// The root command loads the settings file and builds a dependency graph
// (composer, dispatcher, printer sink, operator) before any subcommand runs,
// so handlers share one app context and logger. --dry-run swaps the printer
// for a terminal renderer everywhere.
package commands
