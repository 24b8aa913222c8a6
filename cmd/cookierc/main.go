/*
Copyright © 2025 Cookiecutter Tools Authors
SPDX-License-Identifier: Apache-2.0
*/
package main

import (
	"github.com/cookiecutter-tools/cookierc/pkg/cli"
)

func main() {
	cli.Execute()
}
