package wayline

// Version is the current Wayline release.
var Version = "0.4.0"
