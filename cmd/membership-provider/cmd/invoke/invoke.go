package invoke

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
	"opencsg.com/github-team-membership/common/config"
	"opencsg.com/github-team-membership/common/types"
	"opencsg.com/github-team-membership/common/utils/trace"
	"opencsg.com/github-team-membership/component"
)

var (
	requestFile string
	action      string
)

func init() {
	Cmd.Flags().StringVar(&requestFile, "file", "", "read the handler request from this json or yaml file instead of stdin")
	Cmd.Flags().StringVar(&action, "action", "", "override the action of the request, e.g. create")
}

var Cmd = &cobra.Command{
	Use:     "invoke",
	Short:   "Run one handler request and print the progress event as JSON",
	Example: invokeExample(),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return err
		}
		mc, err := component.NewMembershipComponent(cfg)
		if err != nil {
			return err
		}

		in := cmd.InOrStdin()
		if requestFile != "" {
			f, err := os.Open(requestFile)
			if err != nil {
				return fmt.Errorf("failed to open request file, caused by:%w", err)
			}
			defer f.Close()
			in = f
			if ext := filepath.Ext(requestFile); ext == ".yaml" || ext == ".yml" {
				in, err = yamlToJSON(f)
				if err != nil {
					return err
				}
			}
		}
		return run(cmd.Context(), mc, in, cmd.OutOrStdout(), action)
	},
}

func run(ctx context.Context, mc component.MembershipComponent, in io.Reader, out io.Writer, action string) error {
	var req types.HandlerRequest
	if err := json.NewDecoder(in).Decode(&req); err != nil {
		return fmt.Errorf("failed to decode handler request, caused by:%w", err)
	}
	if action != "" {
		req.Action = types.Action(strings.ToUpper(action))
	}

	ctx = trace.SetRequestIDInContext(ctx, trace.NewRequestID())
	event := mc.Handle(ctx, req)

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(event)
}

// yamlToJSON re-encodes a yaml request as json so both formats share the
// json field names of HandlerRequest.
func yamlToJSON(r io.Reader) (io.Reader, error) {
	var doc map[string]any
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to decode yaml handler request, caused by:%w", err)
	}
	b, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to convert yaml handler request, caused by:%w", err)
	}
	return bytes.NewReader(b), nil
}

func invokeExample() string {
	return `
# read a request from a file
membership-provider invoke --file create.json
membership-provider invoke --file create.yaml

# read a request from stdin and force the action
cat request.json | membership-provider invoke --action read
`
}
