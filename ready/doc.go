/*
Package ready suspends a goroutine until a socket becomes readable.

It is the single blocking point of the driver: every result frame the driver
drains is preceded by one WaitRead call. A Waiter is created once per
connection and reused across waits; the Factory type lets tests swap in an
implementation that never touches a real descriptor.
*/
package ready
