package controllers

import "github.com/go-sql-driver/mysql"

// MySQL error number for a duplicate entry on a unique key.
const duplicateEntryErrNo = 1062

func isDuplicateKey(err error) bool {
	me, ok := err.(*mysql.MySQLError)
	return ok && me.Number == duplicateEntryErrNo
}
