package inquiry

import "time"

// FormResetDelay is how long the success message stays up.
const FormResetDelay = 5 * time.Second
