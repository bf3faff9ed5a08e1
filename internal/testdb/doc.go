// Package testdb provides helpers for database integration tests.
//
// Tests obtain a migrated connection with Open and run each case inside a
// transaction that is always rolled back:
//
//	func TestSomething(t *testing.T) {
//	    db := testdb.Open(t)
//	    testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
//	        // use tx
//	    })
//	}
//
// Without a database URL (see ciutil.DatabaseURLVars) Open skips the test
// locally and fails it in CI.
package testdb
