// Copyright © 2021-2026 The Gomon Project.

/*
Package message defines the messages reported by the "procmon" command: process rankings,
process details, termination outcomes, and the readings of a monitored process. The package
also implements the JSON encoding of the output streamed by the "procmon" command.

The message package defines the following command line flags:
  - -pretty: format output in a manner that is human readable
*/
package message
