// ABOUTME: CLI commands for account profile and linked devices.
// ABOUTME: Demo-mode auth: sign up, sign in, demo bypass, sign out.
package main

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/stslabs/motiv8r/internal/models"
	"github.com/stslabs/motiv8r/internal/store"
)

var (
	signupName string
	signupRole string
	deviceKind string
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage your account profile",
	Long: `Manage the active profile.

Accounts carry a role: "athlete" (trains programs, logs sets) or "coach"
(writes plans, reviews athletes). Demo mode signs in a canned profile
without credentials.

EXAMPLES:

  motiv8r profile signup you@example.com --name "Sung" --role athlete
  motiv8r profile login you@example.com
  motiv8r profile demo athlete
  motiv8r profile show
  motiv8r profile logout`,
}

var profileSignupCmd = &cobra.Command{
	Use:   "signup <email>",
	Short: "Create a profile",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		profile, err := provider.SignUp(args[0], "", signupName, models.Role(signupRole))
		if err != nil {
			return err
		}
		color.Green("✓ Signed up %s", profile.Email)
		fmt.Printf("  %s %s (%s)\n",
			color.New(color.Faint).Sprint(profile.ID.String()[:8]),
			profile.Name, profile.Role)
		return nil
	},
}

var profileLoginCmd = &cobra.Command{
	Use:   "login <email>",
	Short: "Sign in to an existing profile",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		profile, err := provider.SignIn(args[0], "")
		if err != nil {
			return err
		}
		color.Green("✓ Signed in as %s", profile.Name)
		return nil
	},
}

var profileDemoCmd = &cobra.Command{
	Use:       "demo <role>",
	Short:     "Sign in with a demo profile",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"athlete", "coach"},
	RunE: func(cmd *cobra.Command, args []string) error {
		profile, err := provider.SignInDemo(models.Role(args[0]))
		if err != nil {
			return err
		}
		color.Green("✓ Demo mode: %s (%s)", profile.Name, profile.Role)
		return nil
	},
}

var profileShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the active profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		profile, err := provider.Current()
		if err != nil {
			return err
		}
		fmt.Printf("%s\n", color.New(color.Bold).Sprint(profile.Name))
		fmt.Printf("  Email: %s\n", profile.Email)
		fmt.Printf("  Role:  %s\n", profile.Role)
		fmt.Printf("  XP:    %d\n", engine.TotalXP())
		return nil
	},
}

var profileLogoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Sign out",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := provider.SignOut(); err != nil {
			return err
		}
		color.Green("✓ Signed out")
		return nil
	},
}

var profileResetCmd = &cobra.Command{
	Use:   "reset-password <email>",
	Short: "Request a password reset",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := provider.ResetPassword(args[0]); err != nil {
			return err
		}
		fmt.Printf("If %s has an account, a reset link is on its way.\n", args[0])
		return nil
	},
}

var deviceCmd = &cobra.Command{
	Use:   "device",
	Short: "Manage linked devices",
	Long: `Track linked wearables and sensors by name.

Devices are bookkeeping only: motiv8r records what is linked but never
reads data from them.`,
}

var deviceLinkCmd = &cobra.Command{
	Use:   "link <name>",
	Short: "Link a device",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var devices []models.Device
		appStore.Get(store.KeyDevices, &devices)
		for _, d := range devices {
			if d.Name == args[0] {
				return fmt.Errorf("device already linked: %s", args[0])
			}
		}

		devices = append(devices, models.Device{
			Name:     args[0],
			Kind:     deviceKind,
			LinkedAt: time.Now(),
		})
		if err := appStore.Set(store.KeyDevices, devices); err != nil {
			return fmt.Errorf("failed to save devices: %w", err)
		}

		color.Green("✓ Linked %s", args[0])
		return nil
	},
}

var deviceListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List linked devices",
	RunE: func(cmd *cobra.Command, args []string) error {
		var devices []models.Device
		appStore.Get(store.KeyDevices, &devices)
		if len(devices) == 0 {
			fmt.Println("No devices linked.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, d := range devices {
			fmt.Printf("%s %s %s\n",
				padRight(d.Name, 20),
				padRight(d.Kind, 12),
				faint.Sprint(d.LinkedAt.Format("2006-01-02")))
		}
		return nil
	},
}

var deviceUnlinkCmd = &cobra.Command{
	Use:   "unlink <name>",
	Short: "Unlink a device",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var devices []models.Device
		appStore.Get(store.KeyDevices, &devices)

		kept := devices[:0]
		found := false
		for _, d := range devices {
			if d.Name == args[0] {
				found = true
				continue
			}
			kept = append(kept, d)
		}
		if !found {
			return fmt.Errorf("device not linked: %s", args[0])
		}
		if err := appStore.Set(store.KeyDevices, kept); err != nil {
			return fmt.Errorf("failed to save devices: %w", err)
		}

		color.Green("✓ Unlinked %s", args[0])
		return nil
	},
}

func init() {
	profileSignupCmd.Flags().StringVar(&signupName, "name", "", "display name")
	profileSignupCmd.Flags().StringVar(&signupRole, "role", "athlete", "account role: athlete or coach")
	deviceLinkCmd.Flags().StringVarP(&deviceKind, "kind", "k", "wearable", "device kind (wearable, sensor, scale, ...)")

	profileCmd.AddCommand(profileSignupCmd)
	profileCmd.AddCommand(profileLoginCmd)
	profileCmd.AddCommand(profileDemoCmd)
	profileCmd.AddCommand(profileShowCmd)
	profileCmd.AddCommand(profileLogoutCmd)
	profileCmd.AddCommand(profileResetCmd)

	deviceCmd.AddCommand(deviceLinkCmd)
	deviceCmd.AddCommand(deviceListCmd)
	deviceCmd.AddCommand(deviceUnlinkCmd)

	rootCmd.AddCommand(profileCmd)
	rootCmd.AddCommand(deviceCmd)
}
