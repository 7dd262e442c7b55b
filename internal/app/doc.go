// Package app wires application dependencies for the CLI.
//
// It loads the settings file and builds the composer, dispatcher, sink and
// operator from Config, exposing them via the App struct for commands to use.
package app
