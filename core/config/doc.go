// Package config assembles the application configuration.
//
// Configuration comes from environment variables, optionally seeded by a
// .env file. Defaults are declared as struct tags on the partial Config
// structs owned by each core package and registered in Viper through
// reflection, so SERVER_PORT maps to server.port and so on.
package config
