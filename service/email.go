package service

import (
	"fmt"

	"budgetbook/config"

	"gopkg.in/gomail.v2"
)

// EmailService 邮件服务
type EmailService struct {
	cfg *config.EmailConfig
}

// NewEmailService 创建邮件服务
func NewEmailService(cfg *config.EmailConfig) *EmailService {
	return &EmailService{cfg: cfg}
}

// Enabled 邮件服务是否可用
func (s *EmailService) Enabled() bool {
	return s.cfg != nil && s.cfg.Enabled
}

// SendConfirmationEmail 发送注册确认码
func (s *EmailService) SendConfirmationEmail(toEmail, username, code string) error {
	if !s.Enabled() {
		return fmt.Errorf("邮件服务未启用，请配置 BUDGET_EMAIL_ENABLED=true")
	}

	subject := "【记账本】邮箱确认码"
	body := s.generateConfirmationEmailBody(username, code)

	return s.sendEmail(toEmail, subject, body)
}

// generateConfirmationEmailBody 生成确认码邮件内容
func (s *EmailService) generateConfirmationEmailBody(username, code string) string {
	return fmt.Sprintf(`
<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <style>
        body { font-family: Arial, sans-serif; background: #f5f5f5; margin: 0; padding: 20px; }
        .container { max-width: 600px; margin: 0 auto; background: #fff; border-radius: 12px; overflow: hidden; }
        .header { background: #4CAF50; color: white; padding: 30px; text-align: center; }
        .content { padding: 40px 30px; color: #333; line-height: 1.8; }
        .code { font-size: 36px; font-weight: bold; color: #2e7d32; letter-spacing: 8px; font-family: 'Courier New', monospace; }
        .footer { background: #f8f9fa; padding: 20px 30px; text-align: center; color: #6c757d; font-size: 12px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header"><h1>记账本</h1></div>
        <div class="content">
            <p><strong>%s</strong>，您好！</p>
            <p>请使用以下确认码完成账号注册：</p>
            <p style="text-align: center;"><span class="code">%s</span></p>
            <p>确认码有效期为 <strong>10 分钟</strong>。如果这不是您本人的操作，请忽略此邮件。</p>
        </div>
        <div class="footer"><p>此邮件由系统自动发送，请勿回复</p></div>
    </div>
</body>
</html>
`, username, code)
}

// sendEmail 发送邮件
func (s *EmailService) sendEmail(to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(s.cfg.Username, s.cfg.From))
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	d := gomail.NewDialer(s.cfg.Host, s.cfg.Port, s.cfg.Username, s.cfg.Password)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("发送邮件失败: %w", err)
	}

	return nil
}
