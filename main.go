package main

import "github.com/dt-pm-tools/gitlab2jira/cmd"

func main() {
	cmd.Execute()
}
