package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/inheeen/sales-bonus/pkg/version"
)

// displayWelcomeBanner exibe o banner de boas-vindas com informações de versão.
func displayWelcomeBanner(versionStr string) {
	banner := `
   _____       _             ____                        
  / ____|     | |           |  _ \                       
 | (___   __ _| | ___  ___  | |_) | ___  _ __  _   _ ___ 
  \___ \ / _' | |/ _ \/ __| |  _ < / _ \| '_ \| | | / __|
  ____) | (_| | |  __/\__ \ | |_) | (_) | | | | |_| \__ \
 |_____/ \__,_|_|\___||___/ |____/ \___/|_| |_|\__,_|___/
        `
	green := color.New(color.FgGreen, color.Bold).SprintFunc()
	blue := color.New(color.FgBlue, color.Bold).SprintFunc()

	fmt.Println(green(banner))

	formattedVersion := version.FormatVersion()
	fmt.Println(blue(fmt.Sprintf("Sales Bonus Report CLI (v%s)", formattedVersion)))
}
