package config

// Base application details
const AppName = "tidejump"
const DefaultConfigFileName = "config.toml" // Main config file
const DefaultLogFileName = "tidejump.log"

// UI Layout
const DefaultScrollOff = 3
const StatusBarHeight = 1

// Editor defaults
const DefaultTabWidth = 4
const SystemClipboard = false

// Jump defaults. The alphabets mirror jump.DefaultAlphabet and
// jump.DefaultLineAlphabet.
const DefaultAlphabet = "abcdefghijklmnopqrstuvwxyz"
const DefaultLineAlphabet = "asdfghjklqwertyuiopzxcvbnm"
