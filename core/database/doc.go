// Package database handles the connection to a MySQL mirror of the asset registry
// and the schema checks run before reading from it.
//
// It wraps GORM to configure MySQL connections with strict DSN timeouts taken from
// the application's configuration.
//
// # Schema Inspection
//
// Mirrors are maintained by replication jobs outside this tool, so their column sets
// drift. MissingColumns reports which required columns a table lacks so loaders can
// fail with a precise error instead of silently reading blanks.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    return err
//	}
//
//	missing, err := database.MissingColumns(db, "cmdb_ci", []string{"name", "ip_address"})
package database
