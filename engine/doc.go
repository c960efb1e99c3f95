/*
Package engine defines the contract between the driver core and the database
engine that actually speaks the wire protocol.

The driver never implements this contract itself; it consumes it. An Engine
opens Handles, a Handle submits queries and hands back Frames, and a Frame is
one discrete result unit that must be released exactly once via Clear. The
enginemock subpackage provides a scripted implementation for tests.
*/
package engine
