// Package storage provides the object storage client used for bet table
// snapshots.
//
// It wraps the Minio S3 client behind a small Client interface so the
// snapshot feature can be tested against mocks. The feature is optional;
// when storage is disabled or unreachable the rest of the application runs
// unaffected.
package storage
