package nircmd

// Version is the current version of the go-nircmd library
const Version = "1.0.0"
