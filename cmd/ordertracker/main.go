package main

import (
	"github.com/investrobot/ordertracker/pkg/cmd"
)

func main() {
	cmd.Execute()
}
