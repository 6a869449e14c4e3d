package http

// Export the private function for testing
var EncodeDelta = encodeDelta
