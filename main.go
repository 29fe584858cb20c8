package main

import "github.com/nekruzvatanshoev/carval/pkg/cmd"

func main() {
	cmd.Execute()
}
