/*
Package enginemock provides a friendly pretend database engine.

It's designed for driver development and tests where you want to validate
exactly what the driver sends to the engine and script exactly what comes
back—without a real server listening anywhere. No databases were harmed in
the making of these tests.

Why use enginemock?

  - Inspect submissions: plug in a QueryValidator to assert the query text,
    the encoded parameters, and the requested result format.
  - Script result streams: hand back any sequence of frames per submission,
    including mid-stream error frames.
  - Audit resource handling: every Frame counts its Clear calls and every
    Handle remembers whether it was Finished.
  - Simulate failures: flip SendFail, EscapeFail, or a bad ConnectStatus.

Quick start

	eng, _ := enginemock.New(enginemock.Config{
	  Results: [][]*enginemock.Frame{{
	    {FrameStatus: engine.TuplesOK, Columns: []string{"id"},
	     Rows: [][][]byte{{[]byte("1")}}},
	  }},
	})

	// Inject into the component under test, then assert:
	h := eng.Handles[0]
	// h.Sends, h.Finished, frame.ClearCount ...

Behavior

  - Connect always returns a handle; its Status is ConnectStatus.
  - SendQueryParams rejects when SendFail is set or QueryValidator errors;
    the validator error becomes the handle's ErrorMessage.
  - GetResult pops the scripted frames for past submissions and returns nil
    once they are exhausted, matching the drained-connection contract.
  - Escaping applies real quote doubling so injection tests mean something.
*/
package enginemock
