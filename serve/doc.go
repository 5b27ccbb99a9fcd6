// Copyright © 2021-2026 The Gomon Project.

/*
Package serve implements the HTTP server of the "procmon" command. While processes are
monitored the server offers
  - /metrics: the latest reading of each monitored process for Prometheus collection
  - /ws:      a web socket streaming every reading as it is taken

The serve package defines the following command line flags:
  - -port: the port on which to serve (default 0, do not serve)
*/
package serve
