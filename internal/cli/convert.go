package cli

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/spf13/cobra"

	romanrest "romannumeral/go-backend/internal/domains/romannumeral/adapters/rest"
	"romannumeral/go-backend/internal/domains/romannumeral/usecase"
	"romannumeral/go-backend/pkg/models"
)

var errConversionFailed = errors.New("conversion failed")

// convertCmd takes its value verbatim: flag parsing is off so "-10" reaches
// the converter, and only a lone -h/--help prints usage.
func convertCmd() *cobra.Command {
	return &cobra.Command{
		Use:                "convert <value>",
		Short:              "Convert one value locally and print the JSON the endpoint would return",
		Args:               cobra.MaximumNArgs(1),
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 && (args[0] == "-h" || args[0] == "--help") {
				return cmd.Help()
			}
			raw := ""
			if len(args) == 1 {
				raw = args[0]
			}
			res := usecase.Convert(raw)

			enc := json.NewEncoder(cmd.OutOrStdout())
			if res.OK() {
				return enc.Encode(models.RomanNumeral{Input: res.Input, Output: res.Output})
			}
			details := models.NewErrorDetails(time.Now(), res.Failure.Kind.Code(), res.Failure.Message, models.RequestDetails(romanrest.Path))
			if err := enc.Encode(details); err != nil {
				return err
			}
			cmd.SilenceErrors = true
			return errConversionFailed
		},
	}
}
