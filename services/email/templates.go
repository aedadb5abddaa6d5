package email

const ReceiptEmailTemplate = `
<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Payment Receipt</title>
</head>
<body style="margin: 0; padding: 0; background-color: #f9fafb; font-family: Arial, sans-serif;">
    <table role="presentation" cellspacing="0" cellpadding="0" border="0" width="100%%" style="background-color: #f9fafb;">
        <tr>
            <td align="center" style="padding: 40px 20px;">
                <table role="presentation" cellspacing="0" cellpadding="0" border="0" width="600" style="max-width: 600px; background-color: #ffffff; border-radius: 12px; overflow: hidden;">
                    <tr>
                        <td style="background-color: #25364D; padding: 24px 20px; text-align: center;">
                            <h1 style="color: #ffffff; font-size: 20px; margin: 0;">Payment Receipt</h1>
                        </td>
                    </tr>
                    <tr>
                        <td style="padding: 40px;">
                            <p style="font-size: 16px; color: #1f2937;">Hi %s,</p>
                            <p style="font-size: 16px; color: #1f2937;">We received your payment. Here are the details:</p>
                            <table role="presentation" cellspacing="0" cellpadding="0" border="0" width="100%%" style="margin: 24px 0; background-color: #f3f4f6; border-radius: 8px;">
                                <tr>
                                    <td style="padding: 16px 24px; font-size: 14px; color: #6b7280;">Amount charged</td>
                                    <td style="padding: 16px 24px; font-size: 16px; color: #1f2937; text-align: right; font-weight: bold;">$%s</td>
                                </tr>
                                <tr>
                                    <td style="padding: 16px 24px; font-size: 14px; color: #6b7280; border-top: 1px solid #e5e7eb;">Transaction ID</td>
                                    <td style="padding: 16px 24px; font-size: 14px; color: #1f2937; text-align: right; border-top: 1px solid #e5e7eb;">%s</td>
                                </tr>
                            </table>
                            <p style="font-size: 14px; color: #6b7280;">This charge was made against the payment method stored on your account. If you did not authorize this payment, please contact support.</p>
                        </td>
                    </tr>
                    <tr>
                        <td style="background-color: #f3f4f6; padding: 16px; text-align: center;">
                            <p style="font-size: 12px; color: #9ca3af; margin: 0;">This is an automated message. Please do not reply.</p>
                        </td>
                    </tr>
                </table>
            </td>
        </tr>
    </table>
</body>
</html>
`
