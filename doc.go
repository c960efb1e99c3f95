/*
Package pq implements an asynchronous database client driver over a single
persistent connection.

The driver issues parameterized queries through an externally provided
engine (see the engine package), suspends the calling goroutine while the
socket is quiet, drains the resulting frame stream, and classifies every
failure into a small error taxonomy.

Opening and using a connection:

	conn, err := pq.Connect(pq.Config{Engine: eng}, "host=localhost dbname=app")
	if err != nil {
	  // *pq.ConnectionError: the engine reported a bad connection
	}
	defer conn.Finish()

	res, err := conn.Exec("SELECT name FROM users WHERE id = $1", 42)
	if err != nil {
	  // *pq.Error: the submission itself was rejected
	  // *pq.ResultError: a result frame failed validation
	}
	defer res.Close()

Queries can produce several result frames (for example under row
streaming). Exec returns the first validated frame and drains the rest
before returning, so the connection is always idle again by the time
control comes back—on the error path too. This full drain is required by
the wire protocol and must not be skipped: without it the next command on
the connection would desynchronize.

A Conn is not safe for concurrent use. One goroutine at a time owns the
connection; the only blocking point is the readiness wait on the
connection's socket, which parks just the calling goroutine.
*/
package pq
