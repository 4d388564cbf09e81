package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/registration-flow/internal/adapters/http/dto"
	"github.com/jsamuelsen11/registration-flow/internal/domain/registration"
)

// errNotSubmittable is returned by check when the form would be rejected,
// so scripts can rely on the exit status.
var errNotSubmittable = errors.New("account form is not submittable")

func newRootCmd(out io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:           "regctl",
		Short:         "Offline tools for the registration flow",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(out)

	root.AddCommand(checkCmd(), interestsCmd())
	return root
}

func checkCmd() *cobra.Command {
	var form registration.AccountForm

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate account-creation input and print the validation view",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			result := registration.ValidateAccount(form, registration.AllTouched())
			if err := writeJSON(cmd.OutOrStdout(), dto.ToAccountValidationResponse(&result)); err != nil {
				return err
			}
			if !result.Submittable {
				return errNotSubmittable
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&form.Email, "email", "", "email address")
	cmd.Flags().StringVar(&form.Password, "password", "", "password")
	cmd.Flags().StringVar(&form.ConfirmPassword, "confirm", "", "password confirmation")
	cmd.Flags().BoolVar(&form.AcceptedTerms, "accept-terms", false, "accept the terms and conditions")
	return cmd
}

func interestsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "interests",
		Short: "List the learning interests offered on the profile screen",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, name := range registration.Interests() {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), name); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding output: %w", err)
	}
	return nil
}
