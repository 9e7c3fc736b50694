package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/ritam/preptrail/internal/store"
	"github.com/spf13/cobra"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Create or inspect your student profile",
	Long:  "The profile (target role, experience level, interests) drives roadmap personalization. With no flags this shows the stored profile, or walks you through creating one.",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer st.Close()

		repo := st.ProfileRepo()
		existing, err := repo.Load(ctx)
		if err != nil {
			return fmt.Errorf("load profile: %w", err)
		}

		role, _ := cmd.Flags().GetString("role")
		level, _ := cmd.Flags().GetString("level")
		interests, _ := cmd.Flags().GetString("interests")
		resumePath, _ := cmd.Flags().GetString("resume")

		flagsGiven := role != "" || level != "" || interests != "" || resumePath != ""

		if !flagsGiven && existing != nil {
			printProfile(existing)
			return nil
		}

		p := &store.Profile{}
		if existing != nil {
			*p = *existing
		}
		if role != "" {
			p.TargetRole = role
		}
		if level != "" {
			p.ExperienceLevel = level
		}
		if interests != "" {
			p.Interests = splitList(interests)
		}
		if resumePath != "" {
			data, err := os.ReadFile(resumePath)
			if err != nil {
				return fmt.Errorf("read resume file: %w", err)
			}
			p.ResumeText = string(data)
		}

		if !flagsGiven {
			if err := promptProfile(p); err != nil {
				return err
			}
		}

		if p.TargetRole == "" || p.ExperienceLevel == "" {
			return fmt.Errorf("target role and experience level are required")
		}

		if err := repo.Save(ctx, p); err != nil {
			return fmt.Errorf("save profile: %w", err)
		}
		fmt.Println("Profile saved.")
		printProfile(p)
		return nil
	},
}

// promptProfile fills missing fields by asking on stdin.
func promptProfile(p *store.Profile) error {
	reader := bufio.NewReader(os.Stdin)
	ask := func(question, current string) (string, error) {
		if current != "" {
			fmt.Printf("%s [%s]: ", question, current)
		} else {
			fmt.Printf("%s: ", question)
		}
		line, err := reader.ReadString('\n')
		if err != nil {
			return "", fmt.Errorf("read input: %w", err)
		}
		line = strings.TrimSpace(line)
		if line == "" {
			return current, nil
		}
		return line, nil
	}

	var err error
	if p.TargetRole, err = ask("Target role (e.g. ML engineering intern)", p.TargetRole); err != nil {
		return err
	}
	if p.ExperienceLevel, err = ask("Experience level (beginner/intermediate/advanced)", p.ExperienceLevel); err != nil {
		return err
	}
	raw, err := ask("Interests, comma-separated (e.g. NLP, robotics)", strings.Join(p.Interests, ", "))
	if err != nil {
		return err
	}
	p.Interests = splitList(raw)
	return nil
}

func printProfile(p *store.Profile) {
	fmt.Printf("Target role:      %s\n", p.TargetRole)
	fmt.Printf("Experience level: %s\n", p.ExperienceLevel)
	if len(p.Interests) > 0 {
		fmt.Printf("Interests:        %s\n", strings.Join(p.Interests, ", "))
	}
	if p.ResumeText != "" {
		fmt.Printf("Resume:           %d characters stored\n", len(p.ResumeText))
	}
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func init() {
	profileCmd.Flags().String("role", "", "Target role (e.g. \"ML engineering intern\")")
	profileCmd.Flags().String("level", "", "Experience level: beginner, intermediate, or advanced")
	profileCmd.Flags().String("interests", "", "Comma-separated interest areas")
	profileCmd.Flags().String("resume", "", "Path to a resume text file")
}
