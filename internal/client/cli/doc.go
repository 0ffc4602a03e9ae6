// Package cli implements uploadctl, the command-line front end of the
// assetkeeper upload API.
//
// Each invocation runs one command:
//   - put: copy a file into the staging directory, open a session, run it
//     and print progress polled from Status
//   - status / abort / download: inspect or act on an existing session
//   - token: mint an access token locally from the server signing secret
//   - secret: print a fresh random signing secret
//
// Interrupting put (Ctrl-C) cancels the upload call and asks the server to
// abort the session.
package cli
