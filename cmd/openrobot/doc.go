// Command openrobot calls the OpenRobot API from the shell.
//
// The token comes from --token, OPENROBOT_API_TOKEN, a .env file or the
// token key of the configuration file, in that order. Results print as
// tables on a terminal and as JSON otherwise (or with --json).
package main
