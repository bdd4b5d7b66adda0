package mongodb

import (
	"strings"

	"go.mongodb.org/mongo-driver/x/mongo/driver/connstring"
)

// DefaultDatabase is used when the connection URI names no database
const DefaultDatabase = "tasks"

// databaseName returns the database named in a mongodb:// or mongodb+srv://
// URI. SRV records are resolved only when connecting, so an SRV URI is read as
// its plain form here.
func databaseName(uri string) string {
	if rest, ok := strings.CutPrefix(uri, connstring.SchemeMongoDBSRV+"://"); ok {
		uri = connstring.SchemeMongoDB + "://" + rest
	}
	cs, err := connstring.ParseAndValidate(uri)
	if err != nil || cs.Database == "" {
		return DefaultDatabase
	}
	return cs.Database
}

// redact hides credentials in a URI before it is shown to the user
func redact(uri string) string {
	scheme := ""
	rest := uri
	if i := strings.Index(rest, "://"); i >= 0 {
		scheme, rest = rest[:i+3], rest[i+3:]
	}
	hostEnd := strings.IndexAny(rest, "/?")
	if hostEnd < 0 {
		hostEnd = len(rest)
	}
	if at := strings.LastIndex(rest[:hostEnd], "@"); at >= 0 {
		rest = rest[at+1:]
	}
	return scheme + rest
}
