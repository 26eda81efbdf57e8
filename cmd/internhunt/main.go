// Package main provides the entry point for the internhunt CLI.
//
// internhunt is a command-line client for the high-school internship
// discovery platform. It searches the internship catalog, manages the
// application tracker, and fetches AI-generated recommendations.
//
// Usage:
//
//	internhunt search robotics
//	internhunt login <username>
//	internhunt tracker add <internship-id>
//
// See --help for all available options.
package main

// main is the entry point for internhunt.
func main() {
	Execute()
}
