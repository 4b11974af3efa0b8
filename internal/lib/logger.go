package lib

import "github.com/ccfrost/recpath/internal/logging"

var logger = logging.New("lib")
