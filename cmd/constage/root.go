// Copyright 2024 by The constage Authors
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not
// use this file except in compliance with the License. You may obtain a copy
// of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS, WITHOUT
// WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the
// License for the specific language governing permissions and limitations
// under the License.

package main

import (
	"fmt"
	"os"
	"runtime/debug"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/trusteddata/constage"
	"github.com/trusteddata/constage/interpolate"
	"golang.org/x/exp/slices"
)

const (
	contractFlag    = "contract"
	outnameFlag     = "out"
	envFileFlag     = "env-file"
	interpolateFlag = "interpolate"
	debugFlag       = "debug"
)

// Names of the environment variables exporting the derived participant
// identities to sibling steps of the demo workflow.
const (
	providerDIDVar = "TDP_DID"
	consumerDIDVar = "TDC_DID"
)

func buildInfo(info *debug.BuildInfo, key string) string {
	idx := slices.IndexFunc(info.Settings,
		func(setting debug.BuildSetting) bool {
			return setting.Key == key
		})
	if idx < 0 {
		return ""
	}
	return info.Settings[idx].Value
}

func newRootCmd() (rootCmd *cobra.Command) {
	rootCmd = &cobra.Command{
		Use:          "constage [flags]",
		Short:        "constage stages data sharing contracts for the trusted data sharing demo",
		Version:      `":latest"`, // sorry :p
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if dbg, _ := rootCmd.Flags().GetBool(debugFlag); dbg {
				log.SetLevel(log.DebugLevel)
			}
			log.Info("🗩  constage ... stages contracts")
			log.Info(fmt.Sprintf("   %s", rootCmd.Version))

			envfile, _ := rootCmd.Flags().GetString(envFileFlag)
			cfg, err := constage.LoadConfig(envfile)
			if err != nil {
				return err
			}

			ids := constage.NewIdentities(cfg)
			// Sibling demo steps launched from this environment pick the
			// derived identities up from TDP_DID/TDC_DID.
			os.Setenv(providerDIDVar, ids.Provider.String())
			os.Setenv(consumerDIDVar, ids.Consumer.String())

			templatePath, _ := rootCmd.Flags().GetString(contractFlag)
			contract, err := constage.LoadContract(templatePath)
			if err != nil {
				return err
			}

			if interp, _ := rootCmd.Flags().GetBool(interpolateFlag); interp {
				log.Info("💱  interpolating contract template")
				if err := contract.Interpolate(interpolate.Environ()); err != nil {
					return err
				}
			}

			if err := contract.Grant(ids, cfg.KeyVaultEndpoint); err != nil {
				return err
			}

			outname, _ := rootCmd.Flags().GetString(outnameFlag)
			log.Info(fmt.Sprintf("📝  writing %s", outname))
			if err := contract.WriteFile(outname); err != nil {
				return err
			}
			log.Info(fmt.Sprintf("✅  ...contract %q successfully staged", outname))
			return nil
		},
	}
	rootCmd.Flags().String(contractFlag, constage.DefaultTemplatePath,
		"contract template to stage")

	rootCmd.Flags().StringP(outnameFlag, "o", constage.DefaultOutputPath,
		"where to write the staged contract")

	rootCmd.Flags().String(envFileFlag, "",
		"dotenv file to load before validating the environment")

	rootCmd.Flags().Bool(interpolateFlag, false,
		"expand ${VAR} placeholders in the contract template")

	rootCmd.Flags().Bool(debugFlag, false,
		"enable debug logging")

	if info, biok := debug.ReadBuildInfo(); biok {
		commit := buildInfo(info, "vcs.revision")
		if commit != "" {
			modified := ""
			if buildInfo(info, "vcs.modified") == "true" {
				modified = " (modified)"
			}
			rootCmd.Version = fmt.Sprintf("commit %s%s", commit[:8], modified)
		} else if modver := info.Main.Version; modver != "" {
			rootCmd.Version = modver
		}
	}

	return rootCmd
}
