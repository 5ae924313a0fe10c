package main

import "flx-labs/stay-sip/cmd"

func main() {
	cmd.Execute()
}
