package relay

// Version is the library version reported by the CLI.
const Version = "0.3.0"
