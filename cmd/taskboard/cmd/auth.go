package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/templui/taskboard/internal/client/view"
	"github.com/templui/taskboard/internal/model"
)

func RegisterCmd() *cobra.Command {
	var in model.RegisterInput

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account and log in",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			if in.Password == "" {
				in.Password, err = promptPassword(cmd)
				if err != nil {
					return err
				}
			}

			session, err := c.Register(cmd.Context(), in)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Registered %s\n", session.Email)
			return err
		},
	}

	cmd.Flags().StringVar(&in.Email, "email", "", "Email address")
	cmd.Flags().StringVar(&in.Password, "password", "", "Password (prompted when omitted)")
	cmd.Flags().StringVar(&in.FirstName, "first-name", "", "First name")
	cmd.Flags().StringVar(&in.LastName, "last-name", "", "Last name")
	_ = cmd.MarkFlagRequired("email")
	return cmd
}

func LoginCmd() *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and store the token",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			if password == "" {
				password, err = promptPassword(cmd)
				if err != nil {
					return err
				}
			}

			session, err := c.Login(cmd.Context(), email, password)
			if err != nil {
				return err
			}
			name := session.Email
			if session.FirstName != nil && *session.FirstName != "" {
				name = *session.FirstName
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Welcome, %s\n", name)
			return err
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Email address")
	cmd.Flags().StringVar(&password, "password", "", "Password (prompted when omitted)")
	_ = cmd.MarkFlagRequired("email")
	return cmd
}

func LogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the stored token",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			return c.Logout()
		},
	}
}

func ProfileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Show the current user",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			p := view.NewProfile(c)
			err = p.Load(cmd.Context())
			if err != nil {
				return err
			}
			return p.Render(cmd.OutOrStdout())
		},
	}

	var firstName, lastName string
	update := &cobra.Command{
		Use:   "update",
		Short: "Change first and last name",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			p := view.NewProfile(c)
			err = p.Load(cmd.Context())
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("first-name") {
				p.Form.FirstName = firstName
			}
			if cmd.Flags().Changed("last-name") {
				p.Form.LastName = lastName
			}
			err = p.Save(cmd.Context())
			if err != nil {
				return err
			}
			return p.Render(cmd.OutOrStdout())
		},
	}
	update.Flags().StringVar(&firstName, "first-name", "", "First name")
	update.Flags().StringVar(&lastName, "last-name", "", "Last name")

	cmd.AddCommand(update)
	return cmd
}
