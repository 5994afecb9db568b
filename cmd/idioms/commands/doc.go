// Package commands defines the idioms CLI.
//
// Commands
//
//   - run          Run the demos and print their output
//   - list         List demo names and titles
//   - fingerprint  Print the fingerprint of the demo transcript
//
// # Configuration
//
// IDIOMS_FORMAT, IDIOMS_ONLY (comma separated) and IDIOMS_VERBOSE seed the
// persistent --format, --only and --verbose flags. A flag given on the
// command line wins over its variable.
package commands
