package hrtimer

// Version is the current hrtimer package version
var Version = "0.1.0"
