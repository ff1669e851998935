/*
Package chatsdk provides a client SDK for the Harbor chat service REST API.

# Overview

The package covers credential exchange and token lifecycle: logging in with
a username or email, registering new accounts, and persisting the issued
session token. Every server response is classified into a typed outcome so
callers can branch deterministically.

Create a Client and authenticate:

	client := chatsdk.New(chatsdk.Config{
		BaseURL: "https://chat.example.com",
	})

	token, err := client.Login(ctx, "jane", "hunter2")

Or with an email address:

	token, err := client.LoginWithEmail(ctx, "jane@example.com", "hunter2")

Register a new account:

	user, err := client.Signup(ctx, chatsdk.RegistrationRequest{
		Email:    "jane@example.com",
		Name:     "Jane Doe",
		Username: "jane",
		Password: "hunter2",
	})

# Collaborators

The Client depends on two narrow interfaces, both injectable via Config:

  - Transport: sends one request and returns the raw status and body.
    The default wraps net/http. Tests substitute scripted transports.
  - TokenStore: persists the session token (Get/Save). The default keeps
    it in memory; the tokenstore package provides file and SQLite backed
    implementations.

The token store is written if and only if a login exchange succeeds, and
exactly once per successful exchange. No failure path touches it.

# Error Handling

Failed exchanges produce exactly one of three error kinds:

  - AuthError: the server returned 401. The message is always
    "Unauthorized" and the body is never inspected.
  - InvalidResponseError: a 200 response carried a body that could not be
    decoded. The underlying decode error is available via errors.Unwrap.
  - APIError: the server rejected the request with a structured reason.
    Message is the server text with a bracketed identifier appended, e.g.
    "Email already exists. [403]". ErrorType carries the server-supplied
    identifier when present.

Match with errors.As:

	_, err := client.Login(ctx, "jane", "wrong")
	var apiErr *chatsdk.APIError
	if errors.As(err, &apiErr) {
		fmt.Println(apiErr.ErrorType)
	}

Transport-level failures (connection refused, timeout) are outside this
taxonomy and propagate unchanged.

# Concurrency

Each call is a single request/response unit: no retries, no background
work, no state shared between in-flight calls. A Client may be used from
multiple goroutines as long as its Transport and TokenStore are safe for
concurrent use (the provided implementations are).
*/
package chatsdk
