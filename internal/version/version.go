package version

const (
	AppName        = "discordapi"
	AppDescription = "Discord REST client and command router"
	Version        = "0.1.0"
)
