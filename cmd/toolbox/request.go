// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/walteh/toolbox/pkg/request"
	"gitlab.com/tozd/go/errors"
)

func newRequestCmd() *cobra.Command {
	var (
		method      string
		headerFlags []string
		paramFlags  []string
		data        string
		timeout     time.Duration
	)

	cmd := &cobra.Command{
		Use:   "request <url>",
		Short: "dispatch a single HTTP request and print the response",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := request.ParseMethod(method)
			if err != nil {
				return err
			}

			headers, err := parseKeyValueFlags(headerFlags, "--header")
			if err != nil {
				return err
			}
			params, err := parseKeyValueFlags(paramFlags, "--param")
			if err != nil {
				return err
			}

			opts := request.Options{
				Headers: headers,
				Params:  params,
				Timeout: timeout,
			}
			if data != "" {
				opts.Body = json.RawMessage(data)
			}

			resp, err := request.Do(cmd.Context(), m, args[0], opts)
			if err != nil {
				return err
			}
			defer resp.Body.Close()

			body, err := io.ReadAll(resp.Body)
			if err != nil {
				return errors.Errorf("reading response body: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), resp.Status)
			if len(body) > 0 {
				fmt.Fprintln(cmd.OutOrStdout(), string(body))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&method, "method", "X", "GET", "HTTP verb (GET, POST, PUT, PATCH, DELETE)")
	cmd.Flags().StringArrayVarP(&headerFlags, "header", "H", nil, "request header key=value, repeatable")
	cmd.Flags().StringArrayVarP(&paramFlags, "param", "p", nil, "query/body parameter key=value, repeatable")
	cmd.Flags().StringVar(&data, "data", "", "raw JSON request body (mutating verbs only)")
	cmd.Flags().DurationVar(&timeout, "timeout", 2*time.Second, "request timeout")

	return cmd
}

func parseKeyValueFlags(flags []string, flagName string) (map[string]string, error) {
	if len(flags) == 0 {
		return nil, nil
	}
	out := make(map[string]string, len(flags))
	for _, f := range flags {
		k, v, ok := strings.Cut(f, "=")
		if !ok || k == "" {
			return nil, errors.Errorf("invalid %s value %q, want key=value", flagName, f)
		}
		out[k] = v
	}
	return out, nil
}
