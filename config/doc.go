// Package config loads layered configuration for the bukku command.
//
// Values come from a config file, then a .env file, then the process
// environment, later sources winning. Files are looked up as bukku.yml or
// config.yml in the working directory, ./config and the user config
// directory (for example ~/.config/bukku on Linux). Every config key is
// bound to the environment variable named by EnvName, so
// BUKKU_ACCESS_TOKEN fills bukku.access_token.
//
// # Usage
//
//	var cfg cli.Config
//	if err := config.LoadConfig("bukku", &cfg); err != nil {
//		return err
//	}
//
// Structs that implement Config get ApplyDefaults and Validate called after
// unmarshalling.
package config
