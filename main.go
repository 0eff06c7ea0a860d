package main

import "github.com/fertitrack/fertitrack_backend/cmd"

func main() {
	cmd.Execute()
}
