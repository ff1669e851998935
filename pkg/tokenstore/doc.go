/*
Package tokenstore provides ready-made implementations of the chatsdk
TokenStore contract.

Three backends are available:

  - Memory: process-lifetime storage, useful for tests and short-lived
    tools.
  - File: a single encrypted file. The token is sealed with AES-256-GCM
    under a key derived from a caller-supplied passphrase via Argon2id.
  - sqlite.Store: a SQLite database (see the sqlite subpackage), for
    callers that already carry a database.

All implementations are safe for concurrent use and hold at most one
token: Save replaces whatever was stored before.
*/
package tokenstore
