package settings

// Template returns a settings document where every field contains a prompt
// explaining what to put there. It is written on the first run, so users can
// edit the file in place without reading separate documentation.
func Template() *Settings {
	return &Settings{
		BackupsDirectory:   "Каталог для резервных копий (необязательно)",
		TemplatesDirectory: `Каталог с шаблонами обновлений (...\tmplts)`,
		OverwriteLogFile:   true,
		Bases: []InfoBase{
			{
				Description:                 "Название (Типовая бухгалтерия)",
				ConnectionString:            `Строка подключения (File="D:\WORK\_Типовые_\_Типовая_БП2_";, Srvr="localhost";Ref="Accounting";)`,
				PlatformVersion:             "Версия платформы (пусто = последняя, 8.2 = последняя из 8.2, 8.2.19.63 = конкретный релиз)",
				ClusterAdminLogin:           "Логин администратора кластера (для серверных ИБ)",
				ClusterAdminPassword:        "Пароль администратора кластера (для серверных ИБ)",
				Login:                       "Логин",
				Password:                    "Пароль",
				BackupsCount:                2,
				RunUserModeAfterEveryUpdate: false,
				EnableScheduledJobs:         true,
			},
		},
	}
}
