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

/*
constage stages data sharing contracts for the trusted data sharing demo.

# Usage

	constage [flags]

# Flags

	    --contract string   contract template to stage (default "demo/contract/contract.json")
	    --env-file string   dotenv file to load before validating the environment
	-h, --help              help for constage
	    --interpolate       expand ${VAR} placeholders in the contract template
	-o, --out string        where to write the staged contract (default "tmp/contracts/contract.json")
	    --debug             enable debug logging
	-v, --version           version for constage
*/
package main
