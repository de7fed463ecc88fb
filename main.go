package main

import "github.com/aldebaro/hd-organizer/cmd"

func main() {
	cmd.Execute()
}
