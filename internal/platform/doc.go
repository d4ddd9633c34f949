package platform

// Package platform contains OS integration glue: opening files and folders
// with the system default handler and small filesystem helpers shared by
// the front-ends.
