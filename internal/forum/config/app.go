package config

// AppConfig содержит прикладные настройки форума.
type AppConfig struct {
	// ResetLinkBase - базовый URL фронтенда для ссылок сброса пароля.
	ResetLinkBase string `yaml:"reset_link_base" env:"FORUM_RESET_LINK_BASE" env-default:"http://localhost:3000"`
	// BcryptCost - стоимость хэширования bcrypt.
	BcryptCost int `yaml:"bcrypt_cost" env:"FORUM_BCRYPT_COST" env-default:"10"`
}
