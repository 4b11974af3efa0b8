package config

import "github.com/ccfrost/recpath/internal/logging"

var logger = logging.New("config")
