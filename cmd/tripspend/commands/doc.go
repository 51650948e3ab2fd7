// Package commands implements the tripspend command-line interface.
//
// Every command opens the ledger on the configured backend before it runs
// and closes it afterwards. Mutating commands persist the whole document;
// a failed write is logged and the command still reports success for the
// in-memory change.
package commands
