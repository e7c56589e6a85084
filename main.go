package main

import (
	"fmt"
	"os"

	catalogcmd "fjacquet/expense-ml/cmd/catalog"
	"fjacquet/expense-ml/cmd/learn"
	"fjacquet/expense-ml/cmd/predict"
	"fjacquet/expense-ml/cmd/root"
	"fjacquet/expense-ml/cmd/train"
)

func init() {
	root.Init()

	root.Cmd.AddCommand(predict.Cmd)
	root.Cmd.AddCommand(train.Cmd)
	root.Cmd.AddCommand(learn.Cmd)
	root.Cmd.AddCommand(catalogcmd.Cmd)
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
