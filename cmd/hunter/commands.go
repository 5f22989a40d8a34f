package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	hunter "github.com/obaidrock78/hunter-io-client"
)

var (
	domain      string
	company     string
	limit       int
	offset      int
	emailType   string
	seniority   string
	department  string
	firstName   string
	lastName    string
	fullName    string
	maxDuration int
)

var domainSearchCmd = &cobra.Command{
	Use:   "domain-search",
	Short: "List the email addresses found for a domain or company",
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := client.DomainSearch(cmd.Context(), hunter.DomainSearchParams{
			Domain:     domain,
			Company:    company,
			Limit:      limit,
			Offset:     offset,
			Type:       emailType,
			Seniority:  seniority,
			Department: department,
		})
		if err != nil {
			return err
		}
		return printResult(result)
	},
}

var emailFinderCmd = &cobra.Command{
	Use:   "email-finder",
	Short: "Find the most likely email address for a person",
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := client.FindEmail(cmd.Context(), hunter.FindEmailParams{
			Domain:      domain,
			Company:     company,
			FirstName:   firstName,
			LastName:    lastName,
			FullName:    fullName,
			MaxDuration: maxDuration,
		})
		if err != nil {
			return err
		}
		return printResult(result)
	},
}

var emailVerifierCmd = &cobra.Command{
	Use:   "email-verifier <email>",
	Short: "Verify the deliverability of an email address",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := client.VerifyEmail(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return printResult(result)
	},
}

var emailCountCmd = &cobra.Command{
	Use:   "email-count",
	Short: "Count the email addresses found for a domain or company",
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := client.EmailCount(cmd.Context(), hunter.EmailCountParams{
			Domain:  domain,
			Company: company,
			Type:    emailType,
		})
		if err != nil {
			return err
		}
		return printResult(result)
	},
}

var accountCmd = &cobra.Command{
	Use:   "account",
	Short: "Show the account behind the configured API key",
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := client.Account(cmd.Context())
		if err != nil {
			return err
		}
		return printResult(result)
	},
}

func init() {
	for _, cmd := range []*cobra.Command{domainSearchCmd, emailFinderCmd, emailCountCmd} {
		cmd.Flags().StringVar(&domain, "domain", "", "target domain, e.g. stripe.com")
		cmd.Flags().StringVar(&company, "company", "", "target company name, e.g. Stripe")
	}

	domainSearchCmd.Flags().IntVar(&limit, "limit", 0, "maximum number of addresses to return")
	domainSearchCmd.Flags().IntVar(&offset, "offset", 0, "number of addresses to skip")
	domainSearchCmd.Flags().StringVar(&emailType, "type", "", "filter by type: personal or generic")
	domainSearchCmd.Flags().StringVar(&seniority, "seniority", "", "filter by seniority: junior, senior or executive")
	domainSearchCmd.Flags().StringVar(&department, "department", "", "filter by department, e.g. it, sales")

	emailFinderCmd.Flags().StringVar(&firstName, "first-name", "", "the person's first name")
	emailFinderCmd.Flags().StringVar(&lastName, "last-name", "", "the person's last name")
	emailFinderCmd.Flags().StringVar(&fullName, "full-name", "", "the person's full name")
	emailFinderCmd.Flags().IntVar(&maxDuration, "max-duration", 0, "maximum search duration in seconds")

	emailCountCmd.Flags().StringVar(&emailType, "type", "", "count only personal or generic addresses")
}

// printResult writes the API result as indented JSON to stdout.
func printResult(result hunter.Result) error {
	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal result: %w", err)
	}
	fmt.Fprintln(os.Stdout, string(out))
	return nil
}
