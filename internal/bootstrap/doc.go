// Package bootstrap prepares the MongoDB database used by the animalsys
// backend: it creates the collections the backend expects, their indexes
// and, optionally, the application's database user.
//
// Every step is idempotent, so the bootstrap can run on each deployment.
package bootstrap
