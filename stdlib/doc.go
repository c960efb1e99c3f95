/*
Package stdlib exposes the driver through database/sql.

The adapter dials one underlying connection per database/sql connection via
a driver.Connector, so an engine instance has to be supplied up front:

	db := stdlib.OpenDB(pq.Config{Engine: eng}, "host=localhost dbname=app")
	defer db.Close()

	rows, err := db.Query("SELECT id, name FROM users WHERE id = $1", 42)

Row values are handed to database/sql in the engine's text wire format as
byte slices; the standard conversion rules apply from there. Transactions
are not supported—Begin fails—matching the driver core's scope.
*/
package stdlib
