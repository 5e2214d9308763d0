package main

import (
	"errors"

	"solar-catalog-be/internal/adminui"

	"github.com/spf13/cobra"
)

func runTUI(cmd *cobra.Command, args []string) error {
	if email == "" || password == "" {
		return errors.New("admin credentials required: pass --email and --password or set ADMIN_EMAIL and ADMIN_PASSWORD")
	}
	return adminui.Run(cmd.Context(), adminui.NewClient(apiURL), email, password)
}
