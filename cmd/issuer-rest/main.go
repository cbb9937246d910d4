/*
Copyright OpenWallet Foundation Labs. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package issuer-rest Credential Issuance REST API.
//
//	Schemes: http, https
//	Version: 0.1.0
//	License: SPDX-License-Identifier: Apache-2.0
//
//	Consumes:
//	- application/json
//
//	Produces:
//	- application/json
package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/trustbloc/logutil-go/pkg/log"

	"github.com/openwallet-foundation-labs/eudiplo-sub003/cmd/issuer-rest/startcmd"
)

var logger = log.New("issuer-rest")

func main() {
	rootCmd := &cobra.Command{
		Use: "issuer-rest",
		Run: func(cmd *cobra.Command, args []string) {
			cmd.HelpFunc()(cmd, args)
		},
	}

	rootCmd.AddCommand(startcmd.GetStartCmd())

	if err := rootCmd.Execute(); err != nil {
		logger.Error("run issuer-rest", log.WithError(err))
		os.Exit(1)
	}
}
